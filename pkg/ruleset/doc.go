// Package ruleset reads validator rule sets and input records from YAML or
// JSON documents.
//
// A rule document lists the rules of each field under "fields":
//
//	fields:
//	  email:
//	    required: true
//	    email: true
//	    textKey: email
//	  zip:
//	    regexp: '^\d{5}$'
//	    regexpExpl: five digits
//
// Decode checks the rules with validator.CheckRuleSet, so a document with an
// unknown rule or a mistyped argument fails to load instead of failing at
// validation time. The custom rule needs a Go function and is rejected.
//
// A record is a flat object of field names to values:
//
//	record, err := ruleset.LoadRecordFile(ctx, "signup.json")
package ruleset
