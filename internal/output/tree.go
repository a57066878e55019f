package output

import (
	"cmp"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	branchMid  = "├── "
	branchEnd  = "└── "
	indentPipe = "│   "
	indentGap  = "    "

	// Descriptions start at this column, or two spaces after the name.
	descriptionColumn = 30
)

// fileNode is one entry of a rendered output listing.
type fileNode struct {
	name     string
	note     string
	children map[string]*fileNode
}

func (n *fileNode) isDir() bool {
	return n.children != nil
}

func (n *fileNode) child(name string, dir bool) *fileNode {
	if c, ok := n.children[name]; ok {
		return c
	}
	c := &fileNode{name: name}
	if dir {
		c.children = map[string]*fileNode{}
	}
	n.children[name] = c
	return c
}

// sorted returns directories first, then files, each alphabetically.
func (n *fileNode) sorted() []*fileNode {
	out := make([]*fileNode, 0, len(n.children))
	for _, c := range n.children {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b *fileNode) int {
		if a.isDir() != b.isDir() {
			if a.isDir() {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.name, b.name)
	})
	return out
}

// RenderFileTree lists files under rootName as a tree. files maps
// slash-separated relative paths to a short note shown next to each file.
func RenderFileTree(rootName string, files map[string]string) string {
	if len(files) == 0 {
		return ""
	}

	root := &fileNode{name: strings.TrimSuffix(rootName, "/"), children: map[string]*fileNode{}}
	for p, note := range files {
		dir, file := path.Split(path.Clean(filepath.ToSlash(p)))
		parent := root
		for _, part := range strings.Split(strings.Trim(dir, "/"), "/") {
			if part != "" {
				parent = parent.child(part, true)
			}
		}
		parent.child(file, false).note = note
	}

	styles := GetStyles()
	var sb strings.Builder
	sb.WriteString(styles.Bold.Render(root.name + "/"))
	sb.WriteByte('\n')
	writeChildren(&sb, styles, root, "")
	return sb.String()
}

func writeChildren(sb *strings.Builder, styles *Styles, dir *fileNode, indent string) {
	children := dir.sorted()
	for i, c := range children {
		last := i == len(children)-1
		branch, next := branchMid, indent+indentPipe
		if last {
			branch, next = branchEnd, indent+indentGap
		}

		line := indent + branch + c.name
		if c.isDir() {
			line += "/"
		}
		if c.note != "" {
			pad := max(descriptionColumn-lipgloss.Width(line), 2)
			line += strings.Repeat(" ", pad) + styles.Muted.Render(c.note)
		}
		sb.WriteString(line)
		sb.WriteByte('\n')

		if c.isDir() {
			writeChildren(sb, styles, c, next)
		}
	}
}
