package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewLookupCommand creates the lookup command
func NewLookupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup LOCATION_ID",
		Short: "Resolve a location id to full address documents",
		Long: `Resolve a locatieserver location id, as returned by the suggest
command, to the full address records including the linked BAG and
cadastral identifiers.`,
		Example: `  pdok lookup adr-5826c02550308f6da19e4feb5eb97ec8`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createLookupClient()
			if err != nil {
				return err
			}

			addresses, err := client.Lookup(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to resolve location id: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(addresses)
			case OutputFormatYAML:
				return renderYAML(addresses)
			default:
				if len(addresses) == 0 {
					_, _ = os.Stdout.WriteString("No address found for this id\n")

					return nil
				}

				for _, address := range addresses {
					table := tablewriter.NewWriter(os.Stdout)
					table.Header("Property", "Value")
					_ = table.Append("ID", address.ID)
					_ = table.Append("Street", address.Street)
					_ = table.Append("House Number", address.HouseNumber)
					_ = table.Append("Postal Code", address.PostalCode)
					_ = table.Append("City", address.City)
					_ = table.Append("Addressable Object", address.AddressableObjectID)
					_ = table.Append("Number Designation", address.NumberDesignationID)
					_ = table.Append("Linked Lots", strings.Join(address.LinkedLots, ", "))

					if err := table.Render(); err != nil {
						return fmt.Errorf("failed to render table: %w", err)
					}
				}
			}

			return nil
		},
	}
}
