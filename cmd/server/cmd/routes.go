package cmd

import (
	"fmt"
	"io"
	"sort"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/goby-reset/internal/config"
	"github.com/nfrund/goby-reset/internal/server"
	"github.com/spf13/cobra"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Print the registered routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return printRoutes(cmd, cfg, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(routesCmd)
}

func printRoutes(cmd *cobra.Command, cfg config.Provider, w io.Writer) error {
	s := server.New(cfg)
	if err := s.RegisterRoutes(cmd.Context()); err != nil {
		return err
	}

	routes := s.E.Routes()
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path != routes[j].Path {
			return routes[i].Path < routes[j].Path
		}
		return routes[i].Method < routes[j].Method
	})

	for _, r := range routes {
		if r.Method == echo.RouteNotFound {
			continue
		}
		fmt.Fprintf(w, "%-7s %s\n", r.Method, r.Path)
	}
	return nil
}
