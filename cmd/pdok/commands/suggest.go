package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const suggestArgCount = 2

// NewSuggestCommand creates the suggest command
func NewSuggestCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest POSTAL_CODE HOUSE_NUMBER",
		Short: "Suggest addresses for a postal code and house number",
		Long: `Query the locatieserver for address suggestions matching a Dutch
postal code and house number. Results are listed in upstream ranking order.`,
		Example: `  pdok suggest 6511KV 12
  pdok suggest "6511 KV" 12a --output json`,
		Args: cobra.ExactArgs(suggestArgCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createLookupClient()
			if err != nil {
				return err
			}

			suggestions, err := client.SuggestConcrete(context.Background(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to fetch suggestions: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(suggestions)
			case OutputFormatYAML:
				return renderYAML(suggestions)
			default:
				if len(suggestions) == 0 {
					_, _ = os.Stdout.WriteString("No matching addresses found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Type", "Name", "Score")

				for _, suggestion := range suggestions {
					_ = table.Append(
						suggestion.ID,
						suggestion.Type,
						suggestion.DisplayName,
						strconv.FormatFloat(suggestion.Score, 'f', 2, 64),
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
