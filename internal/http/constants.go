package httpx

// CurrentPage constants define the page identifiers used in templates and navigation.
// Each maps 1:1 to a template file under frontend/templates/pages/.
const (
	// Public pages.
	PageLogin     = "login"
	PageRegister  = "register"
	PageSignedOut = "signed-out"

	// Admin pages.
	PageAdminDashboard = "admin-dashboard"
	PageAdminEvents    = "admin-events"
	PageEventForm      = "event-form"

	// Student pages.
	PageStudentDashboard = "student-dashboard"
	PageStudentEvents    = "student-events"
)

// FragmentEventsTable is the partial re-rendered by the events table's
// search, filter, and sort controls.
const FragmentEventsTable = "events-table"
