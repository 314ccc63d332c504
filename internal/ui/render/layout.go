package render

// The display splits into a left entry-list pane (~40% of the width) and a
// right preview pane (~60%), separated by a one-column rule. Terminals too
// narrow to hold both give the whole width to the list.
const (
	listWidthPercent = 40
	minListWidth     = 12
	minPreviewWidth  = 10
)

type layoutMetrics struct {
	listWidth    int
	separatorX   int
	previewStart int
	previewWidth int
	showPreview  bool
}

func computeLayout(w int) layoutMetrics {
	if w <= 0 {
		return layoutMetrics{}
	}

	metrics := layoutMetrics{listWidth: w}

	listWidth := w * listWidthPercent / 100
	if listWidth < minListWidth {
		listWidth = minListWidth
	}
	previewWidth := w - listWidth - 1
	if previewWidth < minPreviewWidth {
		return metrics
	}

	metrics.listWidth = listWidth
	metrics.separatorX = listWidth
	metrics.previewStart = listWidth + 1
	metrics.previewWidth = previewWidth
	metrics.showPreview = true
	return metrics
}
