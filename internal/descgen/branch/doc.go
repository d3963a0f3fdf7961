package branch

// Branch Kinds
// ============
//
// - Literal:
//   The annotation is a single string literal without "{". The literal token is
//   copied into the generated code as written, so raw and interpreted strings
//   keep their escapes.
//
// - Formatted:
//   The annotation is a template with arguments, or a single literal containing
//   "{". It is rendered while generating and emitted as one quoted string. Only
//   allowed when Options.Format is set.
//
// - Absent:
//   The variant has no annotation in optional mode. The generated case returns
//   "", false.
//
// A variant without an annotation in total mode has no branch; it is an error.
