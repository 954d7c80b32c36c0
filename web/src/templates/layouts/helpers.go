package layouts

// CalculateTitle builds the document title from the page title and the
// application name.
func CalculateTitle(title, appName string) string {
	if appName == "" {
		appName = "Goby"
	}
	if title != "" {
		return title + " - " + appName
	}
	return appName
}
