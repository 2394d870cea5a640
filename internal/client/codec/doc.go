// Package codec converts between typed client values and the JSON the
// neatdog backend speaks.
//
// Go values carry their logical field names in camelCase json tags
// ("activityTypeId"); on the wire every object key is lower snake case
// ("activity_type_id"). Marshal rewrites keys camel -> snake after encoding,
// Unmarshal rewrites snake -> camel before decoding.
//
// The rewrite works on the JSON tree, not on struct fields, so it also
// applies to the keys of map values: a map[string]string{"userName": ..}
// goes out as {"user_name": ..}. Types whose map keys are data rather than
// field names must not be sent through this package.
//
// Dates use Timestamp. Encoding always produces RFC 3339 in UTC with
// fractional seconds when present. Decoding accepts, in order:
//
//  1. 2026-01-29T11:05:05.255266Z   (offset, fractional seconds)
//  2. 2026-01-29T11:05:05+00:00     (offset, whole seconds)
//  3. 2026-01-29T11:05:05.255266    (no offset, read as UTC)
//  4. 2026-01-29T11:05:05           (no offset, read as UTC)
//
// Fields that are neither pointers nor tagged omitempty are required; a
// missing or null required field fails with *MissingFieldError. A date that
// matches none of the layouts fails with *DateError.
package codec
