// internal/render/table.go
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/tamzrod/svs/internal/service"
	"github.com/tamzrod/svs/internal/status"
)

const (
	nameHeader  = "SERVICE"
	placeholder = "---"
	unknownUser = "***"
	maxUserLen  = 10
)

// Table renders a Listing as an aligned status table.
type Table struct {
	w  io.Writer
	st styles

	// LookupUser fills the USER column. nil shows every user as unknown.
	LookupUser func(pid int) (string, bool)
}

// NewTable writes to w using the given color profile.
func NewTable(w io.Writer, profile termenv.Profile) *Table {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)
	return &Table{w: w, st: newStyles(r)}
}

// NameWidth is the padded width of the name column for l.
func NameWidth(l service.Listing) int {
	return max(len(nameHeader), l.MaxNameLen) + 1
}

// Render writes the header and one row per service.
func (t *Table) Render(l service.Listing, now time.Time) error {
	width := NameWidth(l)

	var b strings.Builder
	b.WriteString(t.st.header.Render(fmt.Sprintf("   %-*s A  %-6s %-10s %-6s LOG", width, nameHeader, "PID", "USER", "TIME")))
	b.WriteByte('\n')

	for _, svc := range l.Services {
		b.WriteString(t.row(svc, width, now))
		b.WriteByte('\n')
	}

	_, err := io.WriteString(t.w, b.String())
	return err
}

func (t *Table) row(svc service.ServiceStatus, width int, now time.Time) string {
	st := t.st
	name := fmt.Sprintf("%-*s", width, svc.Name)

	if svc.State() == status.StateErrored {
		return st.red.Render(" ?") +
			st.italic.Render(" "+name+" ") +
			st.gray.Render(fmt.Sprintf("-  %-6s %-10s %-6s %-3s", placeholder, placeholder, "--", "-"))
	}

	rec := svc.Record

	autostart := st.gray.Render("-")
	if svc.NormallyUp {
		autostart = st.yellow.Render("+")
	}

	pid, user := placeholder, placeholder
	if rec.HasProcess() {
		pid = strconv.FormatUint(uint64(rec.PID), 10)
		user = t.user(int(rec.PID))
	}

	return " " + t.glyph(svc) + " " + name + " " + autostart + " " +
		st.magenta.Render(fmt.Sprintf(" %-6s ", pid)) +
		st.blue.Render(fmt.Sprintf("%-10s ", user)) +
		st.age(rec.Age(now)) + " " +
		t.logColumn(svc.Log)
}

func (t *Table) user(pid int) string {
	if t.LookupUser == nil {
		return unknownUser
	}
	name, ok := t.LookupUser(pid)
	if !ok {
		return unknownUser
	}
	if len(name) > maxUserLen {
		return name[:maxUserLen-1] + "~"
	}
	return name
}

func (t *Table) logColumn(log *service.ServiceStatus) string {
	if log == nil {
		return t.st.gray.Render("-")
	}
	col := t.glyph(*log)
	if log.State() != status.StateErrored && !log.NormallyUp {
		col += " -"
	}
	return col
}

// glyph is the one-character state indicator.
// Paused and stopping take the color of the raw state: orange up, magenta finishing.
func (t *Table) glyph(svc service.ServiceStatus) string {
	st := t.st
	state := svc.State()

	rawColor := st.orange
	if svc.Record != nil && svc.Record.State == status.RawFinishing {
		rawColor = st.magenta
	}

	switch state {
	case status.StateHealthy:
		return st.green.Render("✔")
	case status.StatePaused:
		return rawColor.Render("⏸")
	case status.StateStopping:
		return rawColor.Render("▼")
	case status.StateFinishing:
		return st.magenta.Render("▽")
	case status.StateDownWanted:
		return st.red.Render("✘")
	case status.StateDownExpected:
		return st.orange.Render("■")
	default:
		return st.red.Render("?")
	}
}
