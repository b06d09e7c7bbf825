// Package codec turns scan descriptions into documents and back.
//
// Every generator, ROI, excluder and mutator serializes to a core.Dict
// keyed by its "typeid". Decode dispatches a Dict to the package that owns
// its typeid; the Marshal/Unmarshal pairs wrap that in JSON
// (encoding/json) or YAML (gopkg.in/yaml.v3) documents. Decoding a
// document and calling ToDict again reproduces the original record.
package codec
