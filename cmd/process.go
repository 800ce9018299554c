package cmd

import (
	"errors"
	"fmt"
	"log"

	"github.com/ArnaudCalmettes/whitelogo/logo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var errNoInput = errors.New("no input image (pass it as an argument or set \"input\" in the config)")

// processCmd represents the process command
var processCmd = &cobra.Command{
	Use:   "process [input] [output]",
	Short: "Recolor a logo to white on transparent",
	Long: `Every pixel whose red, green and blue channels are all above 200 becomes
transparent, every other pixel becomes opaque white. The output is always a PNG.
When no output is given, it is written next to the input as <name>-processed.png.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, output := paths(args)
		if input == "" {
			return errNoInput
		}
		return process(input, output)
	},
}

// paths resolves input and output paths, arguments taking precedence over
// the configuration.
func paths(args []string) (input, output string) {
	input = viper.GetString("input")
	output = viper.GetString("output")
	if len(args) > 0 {
		input = args[0]
		output = ""
	}
	if len(args) > 1 {
		output = args[1]
	}
	if input != "" && output == "" {
		output = logo.DefaultOutput(input)
	}
	return
}

func process(input, output string) error {
	stats, err := logo.Process(input, output)
	if err != nil {
		return err
	}
	if viper.GetBool("verbose") {
		log.Printf("%s: %d pixels, %d foreground, %d background\n",
			input, stats.Total(), stats.Foreground, stats.Background)
	}
	fmt.Println("Processed image saved to", output)
	return nil
}

func init() {
	rootCmd.AddCommand(processCmd)
}
