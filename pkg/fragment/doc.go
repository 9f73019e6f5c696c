// Package fragment renders markup fragments through a pongo2 template set,
// bridging tag builders into template context as pre-rendered, safe values.
// Default filters cover attribute escaping and id sanitization.
package fragment
