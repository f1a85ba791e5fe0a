/*
Package card normalizes relaxed configuration literals ("card literals") into
strict structured sections.

The pipeline has four steps:

 1. Comments are stripped without disturbing string contents; block comments
    keep their newlines so later positions stay line-accurate.

 2. A leading re-export-default marker is removed.

 3. For markup- and script-kind text, embedded event and binding expressions
    are rewritten by a single string-aware tokenizing pass: quoted
    "$event.…" literals lose their quotes, bare $event.… paths gain quotes,
    and this.… paths become "{{…}}" binding expressions.

 4. The text is parsed by a recursive-descent restricted-literal parser over
    a JSON-superset grammar (unquoted identifier keys, single-quoted
    strings, trailing commas, bare expression values) into cty.Value trees,
    then split into sections by asset kind and validated.

Parse failures surface as *SyntaxError with a precise position; validation
problems only produce Warn diagnostics and best-effort normalization.
*/
package card
