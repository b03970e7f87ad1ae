// Package descriptor decodes JSON element descriptors into concrete
// element variants and diffs them by kind.
//
// A descriptor looks like:
//
//	{
//	  "kind": "canvas",
//	  "class": ["view", "dynamic"],
//	  "width": 200,
//	  "height": 100,
//	  "attrs": {"data-id": "7"},
//	  "children": [{"text": "fallback"}, {"kind": "p"}]
//	}
//
// An absent "class" leaves the class attribute unset, while an empty list
// sets it to an empty set. Width and height are only accepted on canvas.
package descriptor
