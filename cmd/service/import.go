package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/quotes-service/internal/adapters/clients"
	"github.com/jsamuelsen/quotes-service/internal/adapters/clients/acl"
	"github.com/jsamuelsen/quotes-service/internal/adapters/importfile"
	"github.com/jsamuelsen/quotes-service/internal/adapters/store"
	"github.com/jsamuelsen/quotes-service/internal/app"
	"github.com/jsamuelsen/quotes-service/internal/ports"
)

var errImportSource = errors.New("give either a file or --remote N")

func newImportCmd(opts *globalOptions) *cobra.Command {
	var remote int

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Replace all quotes and authors from a file or the remote quote API",
		Long: `Deletes every quote and author, then loads entries of the form
{text, author, date_created} from a .json, .yaml or .yml file, or fetches
N random quotes from services.quote.base_url with --remote N.
Nothing is deleted when the source cannot be read or holds invalid entries.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (len(args) == 1) == (remote > 0) {
				return errImportSource
			}

			ctx := cmd.Context()

			env, err := bootstrap(ctx, opts, true)
			if err != nil {
				return err
			}
			defer env.close()

			var source ports.QuoteSource
			if len(args) == 1 {
				source = importfile.New(args[0])
			} else {
				svc := env.cfg.Services.Quote

				client, err := clients.New(svc.Name, svc.BaseURL, env.cfg.Client, env.logger)
				if err != nil {
					return fmt.Errorf("creating quote API client: %w", err)
				}

				source = app.NewRemoteSource(acl.NewQuoteClient(client, env.logger), svc.Name, remote, svc.Concurrency, env.logger)
			}

			importer := app.NewImportService(app.ImportServiceConfig{
				Catalog: store.NewCatalog(env.db),
				Metrics: env.metrics,
				Logger:  env.logger,
			})

			summary, err := importer.Import(ctx, source)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "imported %d quotes and %d authors from %s\n",
				summary.Quotes, summary.Authors, source.Name())

			return nil
		},
	}

	cmd.Flags().IntVar(&remote, "remote", 0, "fetch this many quotes from the remote quote API instead of a file")

	return cmd
}
