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

// NewPandCommand creates the pand command
func NewPandCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pand BAG_OBJECT_ID",
		Short: "Fetch building records for a BAG addressable object",
		Long: `Fetch the building (pand) records linked to a 16-digit BAG
addressable object id. Requires a BAG API key, provided through
--api-key or the BAG_API_KEY environment variable.`,
		Example: `  pdok pand 0268010000084126
  pdok pand 0268010000084126 --crs gps --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createBagClient()
			if err != nil {
				return err
			}

			panden, err := client.GetPanden(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to fetch building records: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(panden)
			case OutputFormatYAML:
				return renderYAML(panden)
			default:
				if len(panden) == 0 {
					_, _ = os.Stdout.WriteString("No building records found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Build Year", "Status", "Object Status", "Floor Area", "Ground Area", "Purposes")

				for _, pand := range panden {
					_ = table.Append(
						pand.ID,
						formatString(pand.BuildYear),
						pand.Status,
						pand.ObjectStatus,
						formatInt(pand.FloorArea),
						formatFloat(pand.GroundArea),
						strings.Join(pand.Purposes, ", "),
					)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}
