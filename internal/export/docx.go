// Package export renders pipeline results into office documents.
package export

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName  = "Times New Roman"
	fontSize  = 13
	titleSize = 16
)

// headingSizes holds the point size of h1..h3; deeper headings use fontSize.
var headingSizes = [...]uint64{titleSize, 15, 14}

// inlineMarkup strips the emphasis and code markers docx runs cannot express.
var inlineMarkup = strings.NewReplacer("**", "", "__", "", "`", "")

var (
	reHeading = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBold    = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBullet  = regexp.MustCompile(`^[\-\*]\s+(.+)$`)
)

// Block is one rendered paragraph of a wisdom document.
type Block struct {
	Text string
	Bold bool
	Size uint64
	Runs []Run
}

// Run is a fragment of a paragraph with its own weight.
type Run struct {
	Text string
	Bold bool
}

// WisdomDocx renders markdown-ish wisdom text into a docx file at outputPath.
func WisdomDocx(title, markdown, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	writeRuns(doc.AddParagraph(""), []Run{{Text: inlineMarkup.Replace(title), Bold: true}}, titleSize)

	for _, b := range Blocks(markdown) {
		runs := b.Runs
		if len(runs) == 0 {
			runs = []Run{{Text: b.Text, Bold: b.Bold}}
		}
		writeRuns(doc.AddParagraph(""), runs, b.Size)
	}

	if err := doc.SaveTo(outputPath); err != nil {
		return fmt.Errorf("save %s: %w", outputPath, err)
	}
	return nil
}

// Blocks splits markdown into paragraphs: headings become bold sized blocks,
// other lines keep inline bold runs. Blank lines and rules are dropped.
func Blocks(markdown string) []Block {
	var blocks []Block
	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed == "---" {
			continue
		}

		if m := reHeading.FindStringSubmatch(trimmed); m != nil {
			blocks = append(blocks, Block{Text: inlineMarkup.Replace(m[2]), Bold: true, Size: headingSize(len(m[1]))})
			continue
		}

		if m := reBullet.FindStringSubmatch(trimmed); m != nil {
			trimmed = "• " + m[1]
		}

		blocks = append(blocks, Block{Text: trimmed, Size: fontSize, Runs: richRuns(trimmed)})
	}
	return blocks
}

func headingSize(level int) uint64 {
	if level < 1 || level > len(headingSizes) {
		return fontSize
	}
	return headingSizes[level-1]
}

func writeRuns(p *docx.Paragraph, runs []Run, size uint64) {
	for _, r := range runs {
		run := p.AddText(r.Text).Font(fontName).Size(size).Color("000000")
		if r.Bold {
			run.Bold(true)
		}
	}
}

func richRuns(text string) []Run {
	parts := reBold.Split(text, -1)
	matches := reBold.FindAllStringSubmatch(text, -1)

	var runs []Run
	for i, part := range parts {
		if part != "" {
			runs = append(runs, Run{Text: inlineMarkup.Replace(part)})
		}
		if i < len(matches) {
			runs = append(runs, Run{Text: inlineMarkup.Replace(matches[i][1]), Bold: true})
		}
	}
	return runs
}
