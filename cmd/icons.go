package cmd

import (
	"fmt"

	"github.com/shouni/go-decal-kit/pkg/icon"

	"github.com/spf13/cobra"
)

// iconsCmd は、アイコン表の一覧表示と名前の解決を行うのだ。
var iconsCmd = &cobra.Command{
	Use:   "icons [name]",
	Short: "アイコン名の一覧を表示、または名前を lucide アイコンに解決しますなのだ。",
	Args:  cobra.MaximumNArgs(1),
	RunE:  iconsCommand,
}

func iconsCommand(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		for _, ic := range icon.All() {
			fmt.Fprintf(out, "%s\t%s\n", ic.Name, ic.Lucide)
		}
		return nil
	}

	ic, ok := icon.Resolve(args[0])
	if !ok {
		return fmt.Errorf("アイコン %q は登録されていないのだ", args[0])
	}
	fmt.Fprintf(out, "%s\t%s\n", ic.Name, ic.Lucide)
	return nil
}
