// Package termview renders an in-memory scene as a terminal projection.
//
// The projection is top-down: X maps to terminal columns and Z to rows, so a
// panel grid laid out in the XZ plane reads the way it would in-world. Boxes
// render as bordered cells with their label text inside; free-standing labels
// render as borderless text. The package also provides an interactive
// bubbletea program that moves a cursor over interactive boxes and delivers
// clicks, used by the demo commands.
package termview

import (
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/panelgrid/panelgrid/pkg/scene"
	"github.com/panelgrid/panelgrid/pkg/scene/memory"
)

// charsPerUnit converts world-space widths to terminal columns.
const charsPerUnit = 40

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Align(lipgloss.Center).
			Padding(0, 1)

	focusedBoxStyle = boxStyle.
			BorderForeground(lipgloss.Color("14")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Align(lipgloss.Center).
			Padding(0, 1).
			Foreground(lipgloss.Color("252"))
)

// panelCell is one renderable element in the projection.
type panelCell struct {
	node  *scene.Node
	x, z  float64
	width float64
	text  string
	box   bool
}

// Render returns the scene projection with no focus highlight.
func Render(b *memory.Backend) string {
	return RenderFocused(b, nil)
}

// RenderFocused returns the scene projection with the focused node's border
// highlighted.
func RenderFocused(b *memory.Backend, focused *scene.Node) string {
	cells := collect(b)
	if len(cells) == 0 {
		return labelStyle.Render("(empty scene)")
	}

	rows := groupRows(cells)

	rendered := make([]string, 0, len(rows))
	for _, row := range rows {
		parts := make([]string, 0, len(row))
		for _, c := range row {
			parts = append(parts, renderCell(c, c.node == focused))
		}
		rendered = append(rendered, lipgloss.JoinHorizontal(lipgloss.Center, parts...))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rendered...)
}

func renderCell(c panelCell, focused bool) string {
	width := int(c.width * charsPerUnit)
	if min := len(c.text) + 4; width < min {
		width = min
	}

	switch {
	case c.box && focused:
		return focusedBoxStyle.Width(width).Render(c.text)
	case c.box:
		return boxStyle.Width(width).Render(c.text)
	default:
		return labelStyle.Width(width).Render(c.text)
	}
}

// collect flattens the scene into projectable cells: boxes with their label
// text, and text nodes that do not belong to a box.
func collect(b *memory.Backend) []panelCell {
	var cells []panelCell
	for _, n := range b.Nodes() {
		switch n.Kind() {
		case scene.KindBox:
			pos := n.WorldPosition()
			cells = append(cells, panelCell{
				node:  n,
				x:     pos.X,
				z:     pos.Z,
				width: n.Box().Size.Width,
				text:  boxText(n),
				box:   true,
			})
		case scene.KindText:
			if underBox(n) {
				continue // rendered as its box's text
			}
			pos := n.WorldPosition()
			cells = append(cells, panelCell{
				node:  n,
				x:     pos.X,
				z:     pos.Z,
				width: float64(len(n.Text())) / charsPerUnit,
				text:  n.Text(),
			})
		}
	}
	return cells
}

// groupRows buckets cells by Z and orders them for display: rows grow in the
// negative-Z direction, so higher Z renders first.
func groupRows(cells []panelCell) [][]panelCell {
	sort.SliceStable(cells, func(i, j int) bool {
		if !sameRow(cells[i].z, cells[j].z) {
			return cells[i].z > cells[j].z
		}
		return cells[i].x < cells[j].x
	})

	var rows [][]panelCell
	for _, c := range cells {
		if len(rows) == 0 || !sameRow(rows[len(rows)-1][0].z, c.z) {
			rows = append(rows, []panelCell{c})
			continue
		}
		rows[len(rows)-1] = append(rows[len(rows)-1], c)
	}
	return rows
}

func sameRow(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func boxText(n *scene.Node) string {
	if t := findText(n); t != nil {
		return t.Text()
	}
	return strings.TrimSpace(n.Name())
}

func findText(n *scene.Node) *scene.Node {
	for _, c := range n.Children() {
		if c.Kind() == scene.KindText {
			return c
		}
		if t := findText(c); t != nil {
			return t
		}
	}
	return nil
}

func underBox(n *scene.Node) bool {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if p.Kind() == scene.KindBox {
			return true
		}
	}
	return false
}
