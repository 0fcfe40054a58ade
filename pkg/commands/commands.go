package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"admitly/pkg/commands/options"
	"admitly/pkg/model"
	"admitly/pkg/prefs"
	"admitly/pkg/store"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "admitly",
		Short: "Track university admission events, study hours, todos and deadlines.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addEvents(topLevel)
	addSlot(topLevel)
	addStudy(topLevel)
	addTodo(topLevel)
	addDeadline(topLevel)
	addNews(topLevel)
	addPrefs(topLevel)
	addVersion(topLevel)
}

// resolveLang picks the language for one invocation: the --lang flag when
// valid, otherwise the stored preference with its fallback.
func resolveLang(p store.Persistence, lo *options.LangOptions) model.Lang {
	if lo.Lang != "" {
		if lang, err := model.ParseLang(lo.Lang); err == nil {
			return lang
		}
	}
	return prefs.LoadLang(p)
}

// confirm prompts on stdout and accepts y/yes. Destructive commands call
// this before invoking the repository; the repository itself never asks.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
