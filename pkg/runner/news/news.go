package news

import (
	"context"
	"errors"
	"fmt"
	"time"

	"admitly/pkg/i18n"
	"admitly/pkg/model"
	"admitly/pkg/printers"
	"admitly/pkg/repo"
	"admitly/pkg/view"
)

// News prints the latest-news selection: the 3 most recently created events
// with their marquee text.
type News struct {
	Lang model.Lang
	Loop bool // emit the doubled marquee sequence instead of one pass

	Events *repo.Events
}

func (n *News) Do(ctx context.Context) error {
	if n.Events == nil {
		return errors.New("can not get news, no repository")
	}

	items := view.LatestNews(n.Events.GetAll(), time.Now(), n.Lang)
	if n.Loop {
		items = view.Marquee(items)
	}

	pp := printers.PrettyPrint{Lang: n.Lang}
	fmt.Println("")
	pp.Title(i18n.T(n.Lang, "latestNews"))
	pp.News(items)
	return nil
}
