package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/hedi/pkg/hedge"
	"github.com/matzehuels/hedi/pkg/hedgeio"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// faceRow is the precomputed display data for one face.
type faceRow struct {
	Face     hedge.Face
	Boundary []hedge.Edge
	K        float64
	Label    string
}

// FaceListModel is the bubbletea model for browsing face boundaries.
// The face list is shown as a table; selecting a face expands its boundary
// walk edge by edge.
type FaceListModel struct {
	Title    string
	Rows     []faceRow
	Cursor   int
	Expanded bool
	Height   int
	Offset   int

	diagram *hedgeio.Diagram
}

// NewFaceListModel precomputes every face's boundary so navigation never
// re-walks the diagram.
func NewFaceListModel(doc *hedgeio.Document) (FaceListModel, error) {
	d := doc.Diagram
	rows := make([]faceRow, 0, d.FaceCount())
	for _, f := range d.Faces() {
		boundary, err := d.FaceEdges(f)
		if err != nil {
			return FaceListModel{}, err
		}
		k, _ := d.K(boundary[0])

		label := ""
		if meta, err := d.FaceData(f); err == nil {
			if name, ok := (*meta)["name"].(string); ok {
				label = name
			}
		}
		rows = append(rows, faceRow{Face: f, Boundary: boundary, K: k, Label: label})
	}
	return FaceListModel{
		Title:   doc.ID,
		Rows:    rows,
		Height:  15,
		diagram: d,
	}, nil
}

func (m FaceListModel) Init() tea.Cmd {
	return nil
}

func (m FaceListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Rows)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			m.Expanded = !m.Expanded
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m FaceListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Faces of " + m.Title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ expand boundary  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Rows) {
		end = len(m.Rows)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		r := m.Rows[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		label := r.Label
		if label == "" {
			label = "—"
		}

		rows = append(rows, []string{
			cursor,
			fmt.Sprintf("%d", r.Face),
			fmt.Sprintf("%d", len(r.Boundary)),
			fmt.Sprintf("%g", r.K),
			label,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Face", "Edges", "k", "Name").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return listSelectedStyle
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n")

	if m.Expanded && m.Cursor < len(m.Rows) {
		b.WriteString("\n")
		b.WriteString(m.boundaryView(m.Rows[m.Cursor]))
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Rows))))

	return b.String()
}

// boundaryView renders the selected face's boundary walk, one half-edge per
// line with its endpoints and twin.
func (m FaceListModel) boundaryView(r faceRow) string {
	var b strings.Builder
	b.WriteString(StyleHighlight.Render(fmt.Sprintf("  boundary of face %d", r.Face)))
	b.WriteString("\n")

	for _, e := range r.Boundary {
		src, _ := m.diagram.Source(e)
		trg, _ := m.diagram.Target(e)
		twin, _ := m.diagram.Twin(e)
		line := fmt.Sprintf("  e%-5d %d %s %d", e, src, iconArrow, trg)
		b.WriteString(StyleValue.Render(line))
		b.WriteString(listDimStyle.Render(fmt.Sprintf("  twin e%d", twin)))
		b.WriteString("\n")
	}
	return b.String()
}
