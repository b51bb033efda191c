package cards

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var stripTags = bluemonday.StrictPolicy()

// blockEnds turns closing block tags into line breaks before tags are dropped.
var blockEnds = strings.NewReplacer(
	"</p>", "</p>\n",
	"<br>", "\n",
	"<br/>", "\n",
	"</li>", "</li>\n",
	"</pre>", "</pre>\n",
	"</h1>", "</h1>\n",
	"</h2>", "</h2>\n",
	"</h3>", "</h3>\n",
)

// PlainText reduces answer HTML to text for terminal and agent output. Blank
// lines are dropped; indentation inside code blocks is kept.
func PlainText(answerHTML string) string {
	text := html.UnescapeString(stripTags.Sanitize(blockEnds.Replace(answerHTML)))

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, strings.TrimRight(line, " \t"))
	}
	return strings.Join(lines, "\n")
}
