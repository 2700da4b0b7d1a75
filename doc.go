/*
Package typediscover implements a per-field type-discovery engine for a
delimited-text reader: given a column (or any stream) of raw textual
fields, it infers the narrowest uniform type that accommodates every
field.

# Pipeline

A FieldState is reused across a whole column. For each field: Reset
clears the per-field counters, ProcessChar is called once per character
with its zero-based position in the raw field, and Resolve produces the
field's verdict once every character has been fed. Process and
ProcessLine wrap that sequence and fold the result into FieldState's
running Aggregate via Promote.

# Classification, not parsing

The scanner never parses a field into a value. It classifies characters
into classes (digit, sign, decimal point, parens, the e/j markers, and
the letters that spell "true", "false", and "nan") and accumulates
bounded counters. This intentionally admits a few false positives — "8e"
resolves FLOAT, a handful of malformed complex literals resolve COMPLEX —
that a real numeric converter downstream is expected to reject.

# Concurrency

FieldState is not safe for concurrent use. Two distinct FieldState
instances may be driven in parallel without coordination; DiscoverColumns
uses exactly that to infer every column of a table concurrently.
*/
package typediscover
