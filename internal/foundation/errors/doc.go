// Package errors provides the classified error primitives used across vados.
//
// A ClassifiedError carries a category (config, image, content, ...), a
// severity and a retry strategy, plus structured context. Errors are built
// through the fluent ErrorBuilder:
//
//	err := errors.ConfigError("main menu references unknown page").
//		WithContext("url", entry.URL).
//		Build()
//
// Fatal configuration errors abort the build; warnings mark a single item
// (one image, one content file) that was skipped. Nothing in vados is
// retried, so RetryNever is the default everywhere.
package errors
