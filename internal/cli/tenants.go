package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	ucTenant "github.com/BruksfildServices01/barberpro/internal/usecase/tenant"
)

func TenantsCmd(open Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tenants",
		Short: "Manage barbershop accounts",
	}
	cmd.AddCommand(
		tenantsListCmd(open),
		tenantsCreateCmd(open),
		tenantsSetActiveCmd(open),
	)
	return cmd
}

func tenantsListCmd(open Opener) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			list, err := ucTenant.NewListTenants(app.Repo).Execute(cmd.Context(), app.adminSession())
			if err != nil {
				return err
			}
			sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-24s  %-28s  %-8s  %-6s\n", "ID", "Email", "Plan", "Active")
			for _, t := range list {
				fmt.Fprintf(out, "%-24s  %-28s  %-8s  %-6t\n", t.ID, t.Email, t.Plan, t.Active)
			}
			return nil
		},
	}
}

func tenantsCreateCmd(open Opener) *cobra.Command {
	var in ucTenant.CreateTenantInput

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a barbershop account",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			t, err := ucTenant.NewCreateTenant(app.Repo, app.Clock, nil).Execute(cmd.Context(), app.adminSession(), in)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created %s (%s)\n", t.ID, t.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "Barbershop name")
	cmd.Flags().StringVar(&in.Email, "email", "", "Login e-mail")
	cmd.Flags().StringVar(&in.Password, "password", "", "Initial password")
	cmd.Flags().StringVar(&in.Plan, "plan", "", "basic, pro or premium (default basic)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func tenantsSetActiveCmd(open Opener) *cobra.Command {
	var active bool

	cmd := &cobra.Command{
		Use:   "set-active <tenant-id>",
		Short: "Enable or disable an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			t, err := ucTenant.NewUpdateTenant(app.Repo).Execute(cmd.Context(), app.adminSession(), args[0], ucTenant.UpdateTenantInput{
				Active: &active,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s active=%t\n", t.ID, t.Active)
			return nil
		},
	}

	cmd.Flags().BoolVar(&active, "active", true, "New state")
	return cmd
}
