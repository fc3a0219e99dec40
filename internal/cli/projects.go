package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Casper-hue/api-watchdog/internal/viewmodel"
)

func newProjectsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List, create and delete projects",
	}
	list := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd, opts, false)
			if err != nil {
				return err
			}
			defer e.close()

			ctx, cancel := requestContext(cmd.Context())
			defer cancel()
			ps, err := e.client.Projects(ctx)
			if err != nil {
				return err
			}
			return e.out.print(ps, func() string {
				t := newTable("ID", "NAME", "CREATED", "TOTAL", "EQUIVALENT")
				for _, p := range ps {
					t.Row(p.ID, p.Name, p.CreatedAt, fmt.Sprintf("$%.2f", p.TotalCost), p.Equivalent)
				}
				return t.String()
			})
		},
	}
	create := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd, opts, false)
			if err != nil {
				return err
			}
			defer e.close()

			ctx, cancel := requestContext(cmd.Context())
			defer cancel()
			existing, err := e.client.Projects(ctx)
			if err != nil {
				return err
			}
			p, err := viewmodel.NewLocalProject(existing, args[0], time.Now())
			if err != nil {
				return err
			}
			created, err := e.client.CreateProject(ctx, p)
			if err != nil {
				return err
			}
			return e.out.message(created, fmt.Sprintf("Project %s created (%s)", created.Name, created.ID))
		},
	}
	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a project and its recorded requests",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd, opts, false)
			if err != nil {
				return err
			}
			defer e.close()

			ctx, cancel := requestContext(cmd.Context())
			defer cancel()
			res, err := e.client.DeleteProject(ctx, args[0])
			if err != nil {
				return err
			}
			return e.out.message(res, fmt.Sprintf("Project %s deleted: %d requests, %d feedback entries removed",
				args[0], res.DeletedRequests, res.DeletedFeedback))
		},
	}
	cmd.AddCommand(list, create, del)
	return cmd
}
