// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package blob stores uploaded proof photos.

Both stores satisfy attendance.BlobStore:

  - FSStore: files under a root directory on an afero.Fs (local disk in
    production, afero.NewMemMapFs in tests)
  - AzureStore: block blobs in an Azure Storage container

Put returns the cleaned key, which is what gets recorded as image_url.
Keys are slash-separated and may not be absolute or contain "..".
*/
package blob
