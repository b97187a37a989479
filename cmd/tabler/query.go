package main

import (
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"

	"github.com/bjaus/tabler"
	"github.com/bjaus/tabler/sqlsource"
)

func newQueryCommand(log logrus.FieldLogger) *cobra.Command {
	var (
		f  outputFlags
		db string
	)
	cmd := &cobra.Command{
		Use:   "query --db path SQL",
		Short: "Render the result of a SQLite query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if db == "" {
				return fmt.Errorf("%w: --db is required", tabler.ErrConfiguration)
			}
			conn, err := sql.Open("sqlite", db)
			if err != nil {
				return fmt.Errorf("%w: open database: %w", tabler.ErrResource, err)
			}
			defer conn.Close()
			rows, err := conn.QueryContext(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("%w: query: %w", tabler.ErrExtraction, err)
			}
			src, err := sqlsource.New(rows)
			if err != nil {
				return err
			}
			defer src.Close()
			log.WithField("db", db).Debug("Running query.")
			return f.render(cmd, src, log)
		},
	}
	cmd.Flags().StringVar(&db, "db", "", "SQLite database file")
	f.register(cmd.Flags())
	return cmd
}
