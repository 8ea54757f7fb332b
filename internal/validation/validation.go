// Package validation binds request input and validates it.
//
// Payloads declare their rules with go-playground/validator struct tags
// and implement Validatable; BindAndValidate turns bind and rule failures
// into 400 "fail" envelopes with per-field errors.
package validation
