package diagram

import "regexp"

var (
	classDecl     = regexp.MustCompile(`^class\s+(` + word + `)`)
	classRelation = regexp.MustCompile(`^(` + word + `)\s*(-->|<--|--|\*--|o--)\s*(` + word + `)`)
)

// ClassDiagram is the shallow structure of a class diagram block.
type ClassDiagram struct {
	Classes   map[string]bool
	Relations []Edge
}

// ParseClassDiagram collects class declarations and relationships from a block.
func ParseClassDiagram(b Block) ClassDiagram {
	c := ClassDiagram{Classes: make(map[string]bool)}
	for _, line := range b.Body() {
		if m := classDecl.FindStringSubmatch(line.Text); m != nil {
			c.Classes[m[1]] = true
		}
		if m := classRelation.FindStringSubmatch(line.Text); m != nil {
			c.Relations = append(c.Relations, Edge{From: m[1], To: m[3], Line: line.Number})
		}
	}
	return c
}
