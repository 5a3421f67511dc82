package linkcheck

// init registers the built-in rules in pipeline order.
//
//nolint:gochecknoinits // Rule registration follows the registry pattern
func init() {
	DefaultRegistry.Register(NewKnownProtocolRule())
	DefaultRegistry.Register(NewEnforceHTTPSRule())
	DefaultRegistry.Register(NewInternalAnchorRule())
	DefaultRegistry.Register(NewInternalFileRule())
	DefaultRegistry.Register(NewInternalWellFormedRule())
	DefaultRegistry.Register(NewAllReachableRule())
	DefaultRegistry.Register(NewImgAltTextRule())
	DefaultRegistry.Register(NewDescriptiveRule())
	DefaultRegistry.Register(NewLinkLengthRule())
}
