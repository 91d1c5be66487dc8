package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/northstar/internal/domain"
	"github.com/spf13/cobra"
)

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
	treeBlank  = "   "
)

// newTreeCmd renders the Year→Vision→Theme→Initiative/Project hierarchy.
// Children are found by walking parent references, so ids left dangling by
// non-cascaded deletes simply render nothing.
func newTreeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Show the strategy hierarchy",
		RunE: func(cmd *cobra.Command, args []string) error {
			var b strings.Builder
			years := app.Store.List(domain.KindYear)
			for _, e := range years {
				y := e.(*domain.Year)
				b.WriteString(styleTitle.Render(y.Title) + " " + styleDim.Render(shortID(y.ID)) + "\n")
				visions := childrenOf(app, domain.KindVision, func(e domain.Entity) bool {
					return e.(*domain.Vision).YearID == y.ID
				})
				for vi, ve := range visions {
					v := ve.(*domain.Vision)
					writeNode(&b, "", vi == len(visions)-1, v.Title, v.ID, "")
					prefix := treePipe
					if vi == len(visions)-1 {
						prefix = treeBlank
					}
					themes := childrenOf(app, domain.KindTheme, func(e domain.Entity) bool {
						return e.(*domain.Theme).VisionID == v.ID
					})
					for ti, te := range themes {
						t := te.(*domain.Theme)
						writeNode(&b, prefix, ti == len(themes)-1, t.Title, t.ID, string(t.Priority))
						inner := prefix + treePipe
						if ti == len(themes)-1 {
							inner = prefix + treeBlank
						}
						leaves := childrenOf(app, domain.KindInitiative, func(e domain.Entity) bool {
							return e.(*domain.Initiative).ThemeID == t.ID
						})
						projects := childrenOf(app, domain.KindProject, func(e domain.Entity) bool {
							return e.(*domain.Project).ThemeID == t.ID
						})
						for li, le := range leaves {
							i := le.(*domain.Initiative)
							last := li == len(leaves)-1 && len(projects) == 0
							writeNode(&b, inner, last, i.Title, i.ID, string(i.Status))
						}
						for pi, pe := range projects {
							p := pe.(*domain.Project)
							writeNode(&b, inner, pi == len(projects)-1, p.Title, p.ID, string(p.Status))
						}
					}
				}
			}
			if b.Len() == 0 {
				fmt.Println("store is empty; run sync first")
				return nil
			}
			fmt.Print(b.String())
			return nil
		},
	}
}

func childrenOf(app *App, kind domain.Kind, keep func(domain.Entity) bool) []domain.Entity {
	var out []domain.Entity
	for _, e := range app.Store.List(kind) {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

func writeNode(b *strings.Builder, prefix string, isLast bool, title, id, badge string) {
	connector := treeBranch
	if isLast {
		connector = treeCorner
	}
	line := prefix + connector + title + " " + styleDim.Render(shortID(id))
	if badge != "" {
		line += " " + styleBadge.Render("["+badge+"]")
	}
	b.WriteString(line + "\n")
}
