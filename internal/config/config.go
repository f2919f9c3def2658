package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// UserAgent identifies the HTTP client.
var UserAgent = "Go-Almanac/" + Version

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName           = "Go Almanac"
	AppID             = "com.github.tartampluch.go-almanac"
	KeyringService    = "com.github.tartampluch.go-almanac"
	LocalhostBindAddr = "127.0.0.1"
	LogFileName       = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// Calendar System Identifiers
// -----------------------------------------------------------------------------

// System identifiers key the name tables, the conversion registry and the
// HTTP/CLI surfaces. They are stable API: changing one breaks saved URLs.
const (
	SystemGregorian = "gregorian"
	SystemJulian    = "julian"
	SystemHebrew    = "hebrew"
	SystemIslamic   = "islamic"
	SystemPersian   = "persian"
	SystemMaya      = "maya"
)

// SystemIDs lists every supported calendar system in presentation order.
var SystemIDs = []string{
	SystemGregorian,
	SystemJulian,
	SystemHebrew,
	SystemIslamic,
	SystemPersian,
	SystemMaya,
}

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion = "version"
	FlagDebug   = "debug"
	FlagDate    = "date"
	FlagFrom    = "from"
	FlagTo      = "to"
	FlagLang    = "lang"
	FlagServe   = "serve"
	FlagPort    = "port"
	FlagVCF     = "vcf"
	FlagWebURL  = "web-url"
	FlagWebUser = "web-user"
	FlagSystem  = "system"

	FlagDescVersion = "Show application version and exit"
	FlagDescDebug   = "Enable debug logging to stderr"
	FlagDescDate    = "Date to convert, as Y-M-D (or b.k.t.u.k for -from maya); defaults to today"
	FlagDescFrom    = "Calendar system of the input date"
	FlagDescTo      = "Target calendar system; defaults to all systems"
	FlagDescLang    = "Language for month and weekday names (en, fr)"
	FlagDescServe   = "Run the anniversary feed server instead of a one-shot conversion"
	FlagDescPort    = "TCP port for the feed server"
	FlagDescVCF     = "Path to a local .vcf file with contact birthdays"
	FlagDescWebURL  = "CardDAV/WebDAV URL to fetch contacts from"
	FlagDescWebUser = "HTTP Basic Auth username (password is read from the system keyring)"
	FlagDescSystem  = "Calendar system anniversaries are tracked in"

	MsgVersionOutput = "%s version %s (%s/%s)\n"

	// One-shot conversion output.
	FormatConvertInput = "%s: %s  [JD %.1f]\n"
	FormatConvertRow   = "  %-10s %-26s %s\n"
)

// SupportedLanguages defines the list of available name-table languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// -----------------------------------------------------------------------------
// Source Modes
// -----------------------------------------------------------------------------

const (
	SourceModeLocal = "local"
	SourceModeWeb   = "web"
)

// -----------------------------------------------------------------------------
// Networking & Limits
// -----------------------------------------------------------------------------

const (
	HTTPTimeout         = 30 * time.Second
	MaxHTTPResponseSize = 256 * 1024 * 1024 // 256MB; contact photos inflate vCard payloads.
	SchemeHTTP          = "http"
	SchemeHTTPS         = "https"
	HeaderUserAgent     = "User-Agent"
)

// -----------------------------------------------------------------------------
// Server Constants
// -----------------------------------------------------------------------------

const (
	DefaultPort        = "8194"
	AddrSeparator      = ":"
	RouteRoot          = "/"
	RouteConvert       = "/convert"
	ServerReadTimeout  = 10 * time.Second
	ServerWriteTimeout = 10 * time.Second
	ServerIdleTimeout  = 60 * time.Second
	ShutdownTimeout    = 5 * time.Second

	QueryFrom = "from"
	QueryTo   = "to"
	QueryDate = "date"

	HeaderAllow           = "Allow"
	HeaderRetryAfter      = "Retry-After"
	HeaderContentType     = "Content-Type"
	HeaderXContentType    = "X-Content-Type-Options"
	HeaderCacheControl    = "Cache-Control"
	HeaderETag            = "ETag"
	HeaderLastModified    = "Last-Modified"
	HeaderIfNoneMatch     = "If-None-Match"
	HeaderIfModifiedSince = "If-Modified-Since"

	AllowedMethods      = "GET, HEAD"
	MimeTextCalendar    = "text/calendar; charset=utf-8"
	MimeApplicationJSON = "application/json; charset=utf-8"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, max-age=60"
	RetryAfterSeconds   = "5"
	FormatETag          = `"%s"`

	HTTPMsgMethodNotAll = "Method Not Allowed"
	HTTPMsgInitializing = "Calendar feed is initializing"
)

// -----------------------------------------------------------------------------
// Sync Defaults
// -----------------------------------------------------------------------------

const (
	// DefaultRefreshMin is the interval between contact re-syncs in serve mode.
	DefaultRefreshMin = 60

	// DefaultTargetSystem is the calendar anniversaries are tracked in when
	// the user does not pick one.
	DefaultTargetSystem = SystemHebrew

	// DefaultLeapYear anchors year-less vCard birthdays (--MM-DD) so that
	// Feb 29 stays representable.
	DefaultLeapYear = 2000
)

// -----------------------------------------------------------------------------
// vCard & iCalendar Constants
// -----------------------------------------------------------------------------

const (
	VCardBDAY = "BDAY"
	VCardFN   = "FN"
	VCardN    = "N"

	PropVersion    = "VERSION"
	PropProdid     = "PRODID"
	PropXWRCalName = "X-WR-CALNAME"
	PropCalScale   = "CALSCALE"
	PropMethod     = "METHOD"
	PropRefresh    = "REFRESH-INTERVAL"
	PropUID        = "UID"
	PropSummary    = "SUMMARY"
	PropDTStart    = "DTSTART"
	PropDTStamp    = "DTSTAMP"

	ICalVersion = "2.0"
	ICalProdid  = "-//tartampluch//go-almanac//EN"
	ICalCalName = "Converted Anniversaries"
	ICalScale   = "GREGORIAN"
	ICalMethod  = "PUBLISH"
	ICalDomain  = "go-almanac.local"

	DefaultICalRefresh = 24 * time.Hour

	FormatUID       = "%s-%d@%s"
	FormatHashInput = "%s|%s|%s"
	UIDSalt         = "go-almanac-v1"
	UIDHashLength   = 8

	FallbackName    = "Unknown"
	FallbackSummary = "Anniversary: %s"
	FormatSummary   = "%s - %s"

	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:-//tartampluch//go-almanac//EN\r\nEND:VCALENDAR\r\n"
)

// -----------------------------------------------------------------------------
// Date Formats
// -----------------------------------------------------------------------------

const (
	DateFormatFullDash  = "2006-01-02"
	DateFormatFullBasic = "20060102"
	DateFormatRFC3339   = time.RFC3339
	DateFormatFullT     = "20060102T150405Z"
	DateFormatNoYearD   = "--01-02"
	DateFormatNoYearB   = "--0102"
)

// -----------------------------------------------------------------------------
// Logging Keys & Components
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyMode      = "mode"
	LogKeyDuration  = "duration_ms"
	LogKeyValue     = "value"
	LogKeyName      = "name"
	LogKeyDOB       = "date_of_birth"
	LogKeySystem    = "system"
	LogKeyLabel     = "label"
	LogKeyStats     = "stats"
	LogKeyTotal     = "total"
	LogKeyFound     = "with_birthday"
	LogKeyToday     = "today"
	LogKeyPort      = "port"
	LogKeyURL       = "url"
	LogKeyStatus    = "status"
	LogKeySizeBytes = "size_bytes"
	LogKeyETag      = "etag"
	LogKeyLang      = "lang"
	LogKeyFile      = "file"
	LogKeyBuild     = "build"
	LogKeyApp       = "app"
	LogKeyVersion   = "version"
	LogKeyGoVer     = "go_version"
	LogKeyEnv       = "env"
	LogKeyOS        = "os"
	LogKeyArch      = "arch"
	LogKeyPID       = "pid"

	CompMain    = "main"
	CompEngine  = "engine"
	CompFetcher = "fetcher"
	CompServer  = "server"
	CompNames   = "names"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting  = "Application starting"
	MsgAppStop      = "Application stopped"
	MsgCtxCancel    = "Context cancelled, shutting down"
	MsgSyncStarted  = "Contact sync started"
	MsgSkippedCard  = "Skipping unreadable vCard"
	MsgSkippedDate  = "Skipping unparseable birthday"
	MsgBdayToday    = "Anniversary today"
	MsgGenSuccess   = "Feed generated"
	MsgServerListen = "Server listening"
	MsgServerStop   = "Server stopping"
	MsgCacheUpdated = "Feed cache updated"
	MsgLocaleLoaded = "Locale loaded"
	MsgLocaleSkip   = "Skipping non-locale file"
	MsgLogWarning   = "%s %q: %v\n"
)

// -----------------------------------------------------------------------------
// Error Messages
// -----------------------------------------------------------------------------

const (
	ErrAppFailed      = "Application failed"
	ErrVCardParse     = "failed to acquire vCard data"
	ErrLocalPathEmpty = "local path is empty"
	ErrWebURLEmpty    = "web URL is empty"
	ErrFetcherMissing = "no fetcher configured for web mode"
	ErrModeUnsupport  = "unsupported source mode"
	ErrInvalidURL     = "invalid URL"
	ErrProtocol       = "unsupported protocol"
	ErrDateParse      = "unrecognized date format"
	ErrICalEncode     = "failed to encode calendar"
	ErrPortRequired   = "server port is required"
	ErrServerShutdown = "server shutdown failed"
	ErrServerStartup  = "server startup failed"
	ErrWriteResp      = "Failed writing response"
	ErrCacheDir       = "cannot locate user cache directory"
	ErrCreateDir      = "cannot create application directory"
	ErrLogFile        = "cannot open log file"
	ErrLocaleLoad     = "Failed loading locale file"
	ErrLocalesAccess  = "Failed reading embedded locales"
	ErrSourceRequired = "serve mode needs -vcf or -web-url"
	ErrLangUnsupport  = "unsupported language"
	ErrKeyringRead    = "cannot read password from keyring"
	ErrSyncFailed     = "Contact sync failed"
)
