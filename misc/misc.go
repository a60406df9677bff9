// Package misc keeps build time program identity.
package misc

// Set with -ldflags "-X pdfhtml/misc.version=... -X pdfhtml/misc.gitHash=..."
var (
	appName = "pdfhtml"
	version = "dev"
	gitHash = "unknown"
)

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return gitHash
}
