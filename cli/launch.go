// Package cli implement the voxphantom command line interface.
package cli

import (
	"net/http"
	"strconv"

	"github.com/spf13/cobra"

	conf "github.com/voxphantom/voxphantom/config"
	"github.com/voxphantom/voxphantom/pkg/phantom"
	"github.com/voxphantom/voxphantom/scene"
	"github.com/voxphantom/voxphantom/web"
)

var log = conf.NamedLogger("cli")

// Launch ...
func Launch() {
	rootCmd := &cobra.Command{Use: "voxphantom"}
	rootCmd.AddCommand(generateGenerateCmd(), generateServeCmd())
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
	}
}

func generateGenerateCmd() *cobra.Command {
	var scenePath string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "voxelize a scene document into phantom volume files",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := scene.Load(scenePath)
			if err != nil {
				return err
			}
			manager := phantom.NewCreatorManager()
			if err := scene.Run(doc, manager); err != nil {
				return err
			}
			log.Infof("Phantom written, %d materials", manager.Materials().Len())
			return nil
		},
	}
	cmd.Flags().StringVarP(&scenePath, "scene", "s", "scene.json", "scene document path")
	return cmd
}

func generateServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "start the phantom creation HTTP service",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := conf.SetupConfig()
			if err := config.Validate(); err != nil {
				return err
			}

			router := web.NewRouter(config)
			address := ":" + strconv.FormatInt(config.BackendPort, 10)
			log.Infof("Listening on %v", address)
			return http.ListenAndServe(address, router)
		},
	}
}
