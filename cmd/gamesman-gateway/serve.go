package main

import (
	"github.com/spf13/cobra"

	"github.com/GamesCrafters/gamesman-gateway/internal/adapters/solver"
	apphttp "github.com/GamesCrafters/gamesman-gateway/internal/app/http"
	"github.com/GamesCrafters/gamesman-gateway/internal/domain"
	"github.com/GamesCrafters/gamesman-gateway/internal/infra/executor"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the gateway HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		bind, _ := cmd.Flags().GetString("bind")
		binary, _ := cmd.Flags().GetString("solver")
		timeout, _ := cmd.Flags().GetDuration("timeout")

		sv := solver.NewExecSolver(executor.SubprocessExecutor{})
		if binary != "" {
			sv.Binary = binary
		}
		sv.Timeout = timeout

		srv := apphttp.NewServer(sv, logger)
		return srv.Start(bind)
	},
}

func init() {
	serveCmd.Flags().String("bind", domain.DefaultBindAddr, "bind address, e.g. 0.0.0.0:8084")
	serveCmd.Flags().String("solver", "", "path of the gamesman binary (default $GAMESMAN_BIN or "+domain.DefaultSolverPath+")")
	serveCmd.Flags().Duration("timeout", domain.DefaultSolverTimeout, "per-request solver bound, 0 for none")
	rootCmd.AddCommand(serveCmd)
}
