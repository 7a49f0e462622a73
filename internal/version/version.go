package version

// Version is the apidocgen release version. Overridden at build time via
// -ldflags "-X git.home.luguber.info/inful/apidocgen/internal/version.Version=...".
var Version = "dev"
