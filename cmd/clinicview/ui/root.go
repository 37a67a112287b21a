package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const dateLayout = "2006-01-02"

type appointmentsMsg struct {
	rows []Appointment
}

// A failed fetch carries no payload; the previous rows stay on screen.
type fetchFailedMsg struct{}

type RootModel struct {
	client *Client

	start textinput.Model
	end   textinput.Model
	focus int // 0 = start input, 1 = end input, 2 = table

	table    table.Model
	quitting bool
}

func NewRootModel(client *Client) RootModel {
	now := time.Now()

	start := textinput.New()
	start.Placeholder = dateLayout
	start.SetValue(now.Format(dateLayout))
	start.Focus()
	start.PromptStyle = focusedStyle
	start.CharLimit = len(dateLayout)

	end := textinput.New()
	end.Placeholder = dateLayout
	end.SetValue(now.AddDate(0, 0, 7).Format(dateLayout))
	end.CharLimit = len(dateLayout)

	columns := []table.Column{
		{Title: "Appointment ID", Width: 16},
		{Title: "Patient ID", Width: 12},
		{Title: "Clinician ID", Width: 12},
		{Title: "Timestamp", Width: 20},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(12),
	)
	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	st.Selected = st.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(st)

	return RootModel{client: client, start: start, end: end, table: t}
}

func (m RootModel) Init() tea.Cmd {
	return m.fetch()
}

// fetch resolves the two date bounds to unix milliseconds and queries the
// service. Unparseable bounds simply skip the fetch.
func (m RootModel) fetch() tea.Cmd {
	from, err := time.Parse(dateLayout, m.start.Value())
	if err != nil {
		return nil
	}
	to, err := time.Parse(dateLayout, m.end.Value())
	if err != nil {
		return nil
	}
	client := m.client
	return func() tea.Msg {
		rows, err := client.AppointmentsByRange(from.UnixMilli(), to.UnixMilli())
		if err != nil {
			return fetchFailedMsg{}
		}
		return appointmentsMsg{rows: rows}
	}
}

func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.focus == 2 || msg.String() == "ctrl+c" {
				m.quitting = true
				return m, tea.Quit
			}
		case "tab", "shift+tab":
			if msg.String() == "tab" {
				m.focus = (m.focus + 1) % 3
			} else {
				m.focus = (m.focus + 2) % 3
			}
			m.start.Blur()
			m.end.Blur()
			m.table.Blur()
			switch m.focus {
			case 0:
				m.start.Focus()
			case 1:
				m.end.Focus()
			case 2:
				m.table.Focus()
			}
			return m, nil
		case "enter":
			// a changed bound takes effect on enter
			return m, m.fetch()
		}

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 12)

	case appointmentsMsg:
		rows := make([]table.Row, 0, len(msg.rows))
		for _, a := range msg.rows {
			rows = append(rows, table.Row{
				fmt.Sprintf("%d", a.ID),
				fmt.Sprintf("%d", a.PatientID),
				fmt.Sprintf("%d", a.ClinicianID),
				fmt.Sprintf("%d", a.Timestamp),
			})
		}
		m.table.SetRows(rows)
		return m, nil

	case fetchFailedMsg:
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focus {
	case 0:
		m.start, cmd = m.start.Update(msg)
	case 1:
		m.end, cmd = m.end.Update(msg)
	case 2:
		m.table, cmd = m.table.Update(msg)
	}
	return m, cmd
}

func (m RootModel) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Appointments") + "\n\n")
	b.WriteString("Filter by Date\n")
	b.WriteString(m.start.View() + "  " + m.end.View() + "\n\n")
	b.WriteString(m.table.View())
	b.WriteString("\n\n")
	b.WriteString(blurredStyle.Render("tab to switch focus, enter to apply dates, q to quit"))
	return docStyle.Render(b.String())
}
