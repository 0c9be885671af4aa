package stemsplit

// Version is the current SDK version.
//
// This version follows semantic versioning (https://semver.org/).
const Version = "0.1.0"

// APIVersion is the StemSplit API version this SDK was built against.
//
// The SDK is tested against this API version. Use [Client.Health] to
// check the actual server version at runtime.
const APIVersion = "1.0.0"

// APIVersionRange is the semver constraint of server versions this SDK
// is known to work with.
const APIVersionRange = ">= 1.0.0, < 1.1.0"

// userAgent identifies this SDK on outbound requests.
const userAgent = "stemsplit-go/" + Version
