package gallery

import (
	"fmt"
	"strings"
	"time"
)

// Manifest renders a plain-text listing of selected photos grouped by
// folder, the file a studio hands to the lab:
//
//	# Selected Photos for <project>
//	# Generated on <date>
//	# Total: <n> photos
//
//	<folder>/
//	  <filename>
func Manifest(projectName string, selections []FolderSelection, now time.Time) string {
	total := 0
	for _, sel := range selections {
		total += len(sel.Photos)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Selected Photos for %s\n", projectName)
	fmt.Fprintf(&b, "# Generated on %s\n", now.Format("1/2/2006"))
	fmt.Fprintf(&b, "# Total: %d photos\n\n", total)

	for _, sel := range selections {
		fmt.Fprintf(&b, "%s/\n", sel.Folder.Name)
		for _, photo := range sel.Photos {
			fmt.Fprintf(&b, "  %s\n", photo.Filename)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// ManifestFilename is the download name for a project's manifest, with
// spaces in the project name replaced by underscores.
func ManifestFilename(projectName string) string {
	return strings.Join(strings.Fields(projectName), "_") + "_selections.txt"
}
