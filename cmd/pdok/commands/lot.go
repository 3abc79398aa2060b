package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tweedegolf/pdok-apis/pkg/pdok"
)

const lotArgCount = 3

// lotWithAddresses bundles a lot with its linked addresses for structured
// output.
type lotWithAddresses struct {
	Lot       *pdok.Lot                `json:"lot"       yaml:"lot"`
	Addresses []pdok.AddressSuggestion `json:"addresses" yaml:"addresses"`
}

// NewLotCommand creates the lot command
func NewLotCommand() *cobra.Command {
	var withAddresses bool

	cmd := &cobra.Command{
		Use:   "lot MUNICIPALITY_CODE SECTION_LETTER LOT_NUMBER",
		Short: "Fetch a cadastral lot from the BRK registry",
		Long: `Fetch a single cadastral lot identified by its municipality code
(three letters and two digits), section letter and lot number.`,
		Example: `  pdok lot HTT02 M 5038
  pdok lot HTT02 M 5038 --with-addresses`,
		Args: cobra.ExactArgs(lotArgCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createBrkClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			lot, err := client.GetLot(ctx, args[0], args[1], args[2])
			if err != nil {
				return fmt.Errorf("failed to fetch lot: %w", err)
			}

			var suggestions []pdok.AddressSuggestion

			if withAddresses {
				suggestions, err = fetchLotAddresses(ctx, args[0], args[1], args[2])
				if err != nil {
					return err
				}
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(lotDocument(lot, suggestions, withAddresses))
			case OutputFormatYAML:
				return renderYAML(lotDocument(lot, suggestions, withAddresses))
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", lot.ID)
				_ = table.Append("Municipality", lot.MunicipalityName)
				_ = table.Append("Municipality Code", lot.MunicipalityCode)
				_ = table.Append("Section", lot.Section)
				_ = table.Append("Lot Number", formatInt(lot.LotNumber))
				_ = table.Append("Area", formatFloat(lot.Area))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				if withAddresses {
					printLotAddresses(suggestions)
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&withAddresses, "with-addresses", false, "also list addresses linked to the lot")

	return cmd
}

// lotDocument selects what structured output renders: the bare lot, or the
// lot together with its linked addresses.
func lotDocument(lot *pdok.Lot, suggestions []pdok.AddressSuggestion, withAddresses bool) interface{} {
	if !withAddresses {
		return lot
	}

	return lotWithAddresses{Lot: lot, Addresses: suggestions}
}

// fetchLotAddresses asks the locatieserver for the addresses linked to a lot.
func fetchLotAddresses(ctx context.Context, municipalityCode, sectionLetter, lotNumber string) ([]pdok.AddressSuggestion, error) {
	client, err := createLookupClient()
	if err != nil {
		return nil, err
	}

	suggestions, err := client.SuggestAddressesForLot(ctx, municipalityCode, sectionLetter, lotNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch linked addresses: %w", err)
	}

	return suggestions, nil
}

func printLotAddresses(suggestions []pdok.AddressSuggestion) {
	if len(suggestions) == 0 {
		_, _ = os.Stdout.WriteString("No addresses linked to this lot\n")

		return
	}

	_, _ = os.Stdout.WriteString("Linked addresses:\n")

	for _, suggestion := range suggestions {
		_, _ = fmt.Fprintf(os.Stdout, "  - %s (%s)\n", suggestion.DisplayName, suggestion.ID)
	}
}
