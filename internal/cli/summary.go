package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	ucTenant "github.com/BruksfildServices01/barberpro/internal/usecase/tenant"
)

func SummaryCmd(open Opener) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print revenue, expense and profit of every barbershop for a month",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			sum, err := ucTenant.NewGlobalFinance(app.Repo, app.Clock).Execute(cmd.Context(), app.adminSession(), month)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "month %s\n", sum.Month)
			fmt.Fprintf(out, "%-24s  %12s  %12s  %12s\n", "Tenant", "Revenue", "Expense", "Profit")
			for _, t := range sum.Tenants {
				fmt.Fprintf(out, "%-24s  %12s  %12s  %12s\n",
					t.TenantID,
					t.Summary.Revenue.StringFixed(2),
					t.Summary.Expense.StringFixed(2),
					t.Summary.Profit.StringFixed(2),
				)
			}
			fmt.Fprintf(out, "%-24s  %12s  %12s  %12s\n",
				"TOTAL",
				sum.Total.Revenue.StringFixed(2),
				sum.Total.Expense.StringFixed(2),
				sum.Total.Profit.StringFixed(2),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "YYYY-MM (default current month)")
	return cmd
}
