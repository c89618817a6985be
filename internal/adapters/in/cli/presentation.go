package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/bnema/faultline/internal/adapters/dto"
	"github.com/bnema/faultline/internal/adapters/in/cli/ui/components"
	"github.com/bnema/faultline/internal/adapters/in/cli/ui/styles"
)

var cliWriteLine = func(w io.Writer, msg string) error {
	_, err := fmt.Fprintln(w, msg)
	return err
}

func cliRenderTitle(msg string) string {
	return styles.Theme.Title.Render(msg)
}

func cliRenderMuted(msg string) string {
	return styles.Theme.Muted.Render(msg)
}

func cliRenderListItem(msg string) string {
	return styles.RenderListItem(msg)
}

func cliRenderMeta(label, value string) string {
	return styles.Theme.Bold.Render(label) + " " + styles.Theme.Muted.Render(value)
}

func cliRenderSuccess(msg string) string {
	return styles.RenderSuccess(msg)
}

func cliRenderWarning(msg string) string {
	return styles.RenderWarning(msg)
}

func cliRenderError(msg string) string {
	return styles.RenderError(msg)
}

// countTrue returns how many entries of m are true.
func countTrue[K comparable](m map[K]bool) int {
	n := 0
	for _, v := range m {
		if v {
			n++
		}
	}
	return n
}

func renderStatusTable(ids []string, statuses map[string]dto.RegionStatusResponse) string {
	table := components.NewTable([]components.TableColumn{
		{Title: "REGION", Width: 16},
		{Title: "STATUS", Width: 10},
		{Title: "PROXIES", Width: 9},
		{Title: "PROCESSES", Width: 10},
		{Title: "ERROR", Width: 40},
	})

	for _, id := range ids {
		s := statuses[id]
		enabled := 0
		for _, p := range s.Proxies {
			if p.Enabled {
				enabled++
			}
		}
		table.AddRow(
			id,
			styles.RenderVerdict(s.Up),
			fmt.Sprintf("%d/%d", enabled, len(s.Proxies)),
			fmt.Sprintf("%d/%d", countTrue(s.Processes), len(s.Processes)),
			s.Error,
		)
	}

	return table.Render()
}

func renderRegionDetail(id string, s dto.RegionStatusResponse) string {
	var b strings.Builder
	b.WriteString(cliRenderTitle(id) + " " + styles.RenderVerdict(s.Up) + "\n")
	if s.Error != "" {
		b.WriteString(cliRenderError(s.Error) + "\n")
	}

	proxies := make([]string, 0, len(s.Proxies))
	for name := range s.Proxies {
		proxies = append(proxies, name)
	}
	sort.Strings(proxies)

	b.WriteString(cliRenderMeta("Proxies:", fmt.Sprintf("%d", len(proxies))) + "\n")
	for _, name := range proxies {
		p := s.Proxies[name]
		line := styles.RenderFlag(p.Enabled) + " " + name
		if p.Upstream != "" {
			line += " " + cliRenderMuted("-> "+p.Upstream)
		}
		for _, t := range p.Toxics {
			line += " " + styles.Theme.Warning.Render("["+t.Type+"]")
		}
		b.WriteString(cliRenderListItem(line) + "\n")
	}

	units := make([]string, 0, len(s.Processes))
	for name := range s.Processes {
		units = append(units, name)
	}
	sort.Strings(units)

	b.WriteString(cliRenderMeta("Processes:", fmt.Sprintf("%d", len(units))) + "\n")
	for _, name := range units {
		b.WriteString(cliRenderListItem(styles.RenderFlag(s.Processes[name])+" "+name) + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func renderRegionsTable(regions []dto.RegionResponse) string {
	if len(regions) == 0 {
		return cliRenderMuted("No regions configured")
	}

	table := components.NewTable([]components.TableColumn{
		{Title: "REGION", Width: 16},
		{Title: "PROXY API", Width: 32},
		{Title: "PROXIES", Width: 30},
		{Title: "UNITS", Width: 30},
	})

	for _, r := range regions {
		table.AddRow(styles.RenderRegion(r.ID, r.Color), r.ProxyAPI, strings.Join(r.Proxies, ","), strings.Join(r.Units, ","))
	}

	return table.Render()
}

func renderOperation(r dto.OperationResponse) string {
	var b strings.Builder

	summary := fmt.Sprintf("%s %s: %d affected", r.Action, r.Region, len(r.AffectedHandles))
	if r.LatencyMs != nil {
		summary += fmt.Sprintf(", %dms latency", *r.LatencyMs)
	}
	switch {
	case !r.OK:
		b.WriteString(cliRenderError(summary) + "\n")
	case len(r.Failed) > 0:
		b.WriteString(cliRenderWarning(fmt.Sprintf("%s, %d failed", summary, len(r.Failed))) + "\n")
	default:
		b.WriteString(cliRenderSuccess(summary) + "\n")
	}

	for _, h := range r.AffectedHandles {
		b.WriteString(cliRenderListItem(h) + "\n")
	}
	for _, f := range r.Failed {
		b.WriteString(cliRenderListItem(styles.Theme.Error.Render(f.Handle) + " " + cliRenderMuted(f.Kind+": "+f.Error)) + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
