// Package document describes action chains as files.
//
// A document is a list of steps. Each step names a variant in its type field
// and carries that variant's fields; dialog steps hold options whose own
// step lists build independent chains:
//
//	actions:
//	  - type: toast
//	    kind: success
//	    title: Saved
//	  - type: dialog
//	    title: Continue?
//	    options:
//	      - text: Open
//	        actions:
//	          - type: link
//	            url: https://example.com
//
// Documents can be written as YAML, TOML, JSON or XML. Build turns a document
// into an actions.Queue, FromNode goes the other way so a decoded chain can be
// saved and rebuilt.
package document
