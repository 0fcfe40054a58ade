package commands

import (
	"context"

	"github.com/spf13/cobra"

	"admitly/pkg/commands/options"
	"admitly/pkg/repo"
	"admitly/pkg/runner/news"
	"admitly/pkg/store"
)

func addNews(topLevel *cobra.Command) {
	lo := &options.LangOptions{}
	loop := false

	cmd := &cobra.Command{
		Use:   "news",
		Short: "Show the latest-news selection: the 3 most recently added events.",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := news.News{
				Lang:   resolveLang(p, lo),
				Loop:   loop,
				Events: repo.NewEvents(p),
			}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().BoolVar(&loop, "loop", false, "Emit the doubled marquee sequence.")
	options.AddLangArgs(cmd, lo)
	topLevel.AddCommand(cmd)
}
