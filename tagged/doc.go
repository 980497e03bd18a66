// Package tagged resolves edn tagged elements to native values.
//
// A Registry maps tags to handlers. Resolving a value with a tag that has
// no handler yields an edn.TaggedValue, so no tagged data is lost:
//
//	v, err := tagged.Resolve(tagged.Inst, "1985-04-12T23:20:50.52Z") // time.Time
//	v, err = tagged.Resolve(edn.MustTag("myapp", "Person"), m)       // edn.TaggedValue
//
// The Default registry knows the tags built into edn, #inst and #uuid.
// Tags without a prefix are reserved for edn itself; applications register
// prefixed tags only.
package tagged
