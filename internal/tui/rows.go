package tui

import (
	"github.com/medobsmind/medobs/internal/chat"
	"github.com/medobsmind/medobs/internal/render"
)

const minBubbleWidth = 20

// RowRenderer returns the list row renderer for the chat viewport. User rows
// are shown verbatim; assistant rows are rendered as markdown.
func RowRenderer(opts render.Options) chat.RenderFunc {
	return func(row chat.Row, width int) string {
		bubbleWidth := width - 6
		if bubbleWidth < minBubbleWidth {
			bubbleWidth = minBubbleWidth
		}

		if row.Kind == chat.UserRow {
			label := userLabelStyle.Render("● You")
			bubble := userBubbleStyle.Width(bubbleWidth).Render(row.Text)
			return label + "\n" + bubble + "\n"
		}

		label := assistantLabelStyle.Render("✦ Assistant")
		body := render.MarkdownOrPlain(row.Text, opts.WithWidth(bubbleWidth-4))
		bubble := assistantBubbleStyle.Width(bubbleWidth).Render(body)
		return label + "\n" + bubble + "\n"
	}
}
