// Package pdfcompare runs several PDF text-extraction methods over a folder
// of documents and records what each method recovers.
//
// Two methods read the embedded text layer through independent libraries
// (MuPDF and a pure Go reader). A third method rasterizes pages and runs
// OCR; it is wired but only used when explicitly configured.
//
// # Extracting a single file
//
// Every method implements [Extractor]. A failure is never returned as an
// error; it is recorded on the [ExtractionResult] instead:
//
//	res := ext.Extract(ctx, "report.pdf")
//	if !res.Succeeded {
//	    log.Println(res.Error)
//	}
//	fmt.Println(res.CharCount(), res.PageCount())
//
// # Comparing methods
//
// A [Comparator] runs its extractors one after another and prints progress:
//
//	cmp := pdfcompare.NewComparator(
//	    pdfcompare.WithExtractors(mupdf, gopdf),
//	    pdfcompare.WithOutput(os.Stdout),
//	)
//	set := cmp.Compare(ctx, "report.pdf")
//
// A [Persister] writes one text file per successful, non-empty result:
//
//	p := pdfcompare.NewPersister("extracted")
//	paths, err := p.Save(set)
//
// # Running a folder
//
// A [Runner] ties discovery, comparison, persistence and the summary table
// together:
//
//	r := pdfcompare.NewRunner("pdfs", "extracted",
//	    pdfcompare.WithExtractors(mupdf, gopdf),
//	)
//	summary, err := r.Run(ctx)
//	if errors.Is(err, pdfcompare.ErrNoInputFiles) {
//	    return
//	}
package pdfcompare
