// Package spreadsheet builds Excel workbooks through a chainable Builder
// on top of excelize: data sheets with header styling and column autofit,
// pie/bar/line/scatter charts driven by cell ranges, and hyperlinks.
// Errors are deferred to Save so construction reads as a single chain.
package spreadsheet
