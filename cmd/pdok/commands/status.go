package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ServiceStatus reports the reachability of one upstream service.
type ServiceStatus struct {
	Service string `json:"service" yaml:"service"`
	Status  string `json:"status"  yaml:"status"`
	Detail  string `json:"detail,omitempty" yaml:"detail,omitempty"`
}

const (
	statusUp      = "up"
	statusDown    = "down"
	statusSkipped = "skipped"
)

// NewStatusCommand creates the status command
func NewStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check the reachability of the upstream services",
		Long: `Probe each upstream service by fetching a record that is known to
exist. The BAG probe is skipped when no API key is configured.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			statuses := []ServiceStatus{
				probeService("locatieserver", func() error {
					client, err := createLookupClient()
					if err != nil {
						return err
					}

					return client.Status(ctx)
				}),
				probeBag(ctx),
				probeService("brk", func() error {
					client, err := createBrkClient()
					if err != nil {
						return err
					}

					return client.Status(ctx)
				}),
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(statuses)
			case OutputFormatYAML:
				return renderYAML(statuses)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Service", "Status", "Detail")

				for _, status := range statuses {
					_ = table.Append(status.Service, status.Status, status.Detail)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

func probeService(name string, probe func() error) ServiceStatus {
	if err := probe(); err != nil {
		return ServiceStatus{Service: name, Status: statusDown, Detail: err.Error()}
	}

	return ServiceStatus{Service: name, Status: statusUp}
}

func probeBag(ctx context.Context) ServiceStatus {
	if viper.GetString("api-key") == "" {
		return ServiceStatus{Service: "bag", Status: statusSkipped, Detail: "no API key configured"}
	}

	return probeService("bag", func() error {
		client, err := createBagClient()
		if err != nil {
			return err
		}

		return client.Status(ctx)
	})
}
