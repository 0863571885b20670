// Package imagefile materializes image sources from a blob store into
// picdesk items.
//
// Only the image header is decoded: the materializer reports the format
// and pixel dimensions without reading pixel data. GIF, JPEG and PNG are
// registered.
//
//	store := blobstore.NewLocalStore("/srv/pictures")
//	m, err := imagefile.NewMaterializer(store,
//	    imagefile.WithCache(4096),
//	    imagefile.WithRateLimit(200, 50),
//	)
//	ix, err := picdesk.New[imagefile.ImageFile](m)
package imagefile
