// Command scenetools converts Three.JS JSON scene exports into the ray
// tracer's YAML scene description and inspects the voxel grids the renderer
// produces.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"scenetools/pkg/convert"
	"scenetools/pkg/scene"
	"scenetools/pkg/threejs"
	"scenetools/pkg/voxel"
)

// Default filenames used when convert is run without arguments.
const (
	defaultInput  = "scene.json"
	defaultOutput = "scene.yaml"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "scenetools",
		Short:         "Scene pipeline tools for the ray tracer",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newConvertCmd())
	root.AddCommand(newInspectCmd())
	return root
}

func newConvertCmd() *cobra.Command {
	var constantsFile string
	cmd := &cobra.Command{
		Use:   "convert [input.json] [output.yaml]",
		Short: "Convert a Three.JS JSON scene export to a YAML scene description",
		Long: "Convert reads a Three.JS JSON scene export (default scene.json) and writes\n" +
			"the equivalent YAML scene description (default scene.yaml), overwriting any\n" +
			"existing output file. Nothing is written unless the whole scene converts.",
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, output := defaultInput, defaultOutput
			if len(args) > 0 {
				input = args[0]
			}
			if len(args) > 1 {
				output = args[1]
			}
			return runConvert(input, output, constantsFile)
		},
	}
	cmd.Flags().StringVar(&constantsFile, "constants", "", "YAML or JSON file with render constant overrides")
	return cmd
}

// runConvert performs the full translation: load, convert, then write. The
// output file is only touched after the whole scene has converted, so a
// failure partway through leaves no partial output behind.
func runConvert(input, output, constantsFile string) error {
	fmt.Println("Loading JSON file...")
	doc, err := threejs.Load(input)
	if err != nil {
		return err
	}

	fmt.Println("Converting JSON to YAML...")
	out, err := convert.Convert(doc)
	if err != nil {
		return err
	}
	if constantsFile != "" {
		if err := loadConstants(&out.Constants, constantsFile); err != nil {
			return err
		}
	}

	fmt.Println("Writing YAML to file...")
	return out.WriteFile(output)
}

// loadConstants merges render-constant overrides from a config file into c.
// The file may either nest the values under a top-level "constants" key,
// matching the output schema, or list them at the top level.
func loadConstants(c *scene.Constants, filename string) error {
	v := viper.New()
	v.SetConfigFile(filename)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read constants file: %w", err)
	}
	if v.IsSet("constants") {
		if err := v.UnmarshalKey("constants", c); err != nil {
			return fmt.Errorf("invalid constants file: %w", err)
		}
		return nil
	}
	if err := v.Unmarshal(c); err != nil {
		return fmt.Errorf("invalid constants file: %w", err)
	}
	return nil
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <grid.bin>",
		Short: "Print dimensions and sample statistics of a voxel grid file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := voxel.Load(args[0])
			if err != nil {
				return err
			}
			stats := grid.Stats()
			fmt.Printf("dimensions: %d x %d x %d (%d samples)\n", grid.Nx, grid.Ny, grid.Nz, grid.Len())
			fmt.Printf("min: %g  max: %g  mean: %g\n", stats.Min, stats.Max, stats.Mean)
			return nil
		},
	}
}
