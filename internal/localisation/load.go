package localisation

import (
	"os"
	"path"

	"github.com/louisbranch/anbennar-atlas/internal/source"
)

// Load reads the localisation directory of a game tree. Unreadable files are
// logged and counted by the tree.
func Load(tree *source.Tree) (*Bundle, error) {
	if err := tree.Require(source.LocalisationDir); err != nil {
		return nil, err
	}
	return LoadFromFS(os.DirFS(tree.Path(source.LocalisationDir)), func(p string, err error) {
		tree.Skip("localisation", path.Join(source.LocalisationDir, p), err)
	})
}
