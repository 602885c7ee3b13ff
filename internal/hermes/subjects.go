package hermes

const (
	SubjectChartRendered = "fairem.chart.rendered"

	StreamName   = "FAIREM_EVENTS"
	StreamMaxAge = "168h" // 7 days
)

var StreamSubjects = []string{"fairem.comparison.>", "fairem.session.>", "fairem.chart.>"}

func SubjectComparisonSaved(id string) string   { return "fairem.comparison." + id + ".saved" }
func SubjectComparisonDeleted(id string) string { return "fairem.comparison." + id + ".deleted" }

func SubjectSessionCreated(id string) string { return "fairem.session." + id + ".created" }
func SubjectSessionUpdated(id string) string { return "fairem.session." + id + ".updated" }
