package cmd

import (
	"github.com/mj1618/jiggle-cli/internal/output"
	"github.com/mj1618/jiggle-cli/internal/platform"
	"github.com/spf13/cobra"
)

// KeyAlias is one alternative spelling accepted for a key.
type KeyAlias struct {
	Alias string `yaml:"alias" json:"alias"`
	Key   string `yaml:"key"   json:"key"`
}

// KeysResult is the output of the keys command.
type KeysResult struct {
	Named   []platform.Key `yaml:"named"   json:"named"`
	Aliases []KeyAlias     `yaml:"aliases" json:"aliases"`
	Note    string         `yaml:"note"    json:"note"`
}

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List key names accepted by --toggle-key and --stop-key",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return output.Print(buildKeysResult())
	},
}

func init() {
	rootCmd.AddCommand(keysCmd)
}

func buildKeysResult() KeysResult {
	res := KeysResult{
		Named: platform.NamedKeys(),
		Note:  "letters, digits and punctuation are named by their US-layout character, e.g. a, 1, /",
	}
	for _, pair := range platform.KeyAliases() {
		res.Aliases = append(res.Aliases, KeyAlias{Alias: pair[0], Key: pair[1]})
	}
	return res
}
