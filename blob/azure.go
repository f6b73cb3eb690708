// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package blob

import (
	"context"
	"errors"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	azblobblob "github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
)

// AzureStore keeps blobs in one Azure Blob Storage container
type AzureStore struct {
	client    *azblob.Client
	container string
}

// NewAzureStore authenticates with an account name and shared key.
// serviceURL is the account endpoint, e.g. https://<account>.blob.core.windows.net/
func NewAzureStore(serviceURL, account, key, container string) (*AzureStore, error) {
	if serviceURL == "" || account == "" || container == "" {
		return nil, errors.New("azure blob store requires service URL, account and container")
	}

	cred, err := azblob.NewSharedKeyCredential(account, key)
	if err != nil {
		return nil, fmt.Errorf("invalid azure credentials: %w", err)
	}

	client, err := azblob.NewClientWithSharedKeyCredential(serviceURL, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create azure client: %w", err)
	}

	return &AzureStore{client: client, container: container}, nil
}

// Put uploads data as a block blob. With upsert false the upload is
// conditional on the blob not existing yet.
func (s *AzureStore) Put(ctx context.Context, key string, data []byte, contentType string, upsert bool) (string, error) {
	clean, err := cleanKey(key)
	if err != nil {
		return "", err
	}

	opts := &azblob.UploadBufferOptions{
		HTTPHeaders: &azblobblob.HTTPHeaders{BlobContentType: &contentType},
	}
	if !upsert {
		anyTag := azcore.ETagAny
		opts.AccessConditions = &azblobblob.AccessConditions{
			ModifiedAccessConditions: &azblobblob.ModifiedAccessConditions{IfNoneMatch: &anyTag},
		}
	}

	_, err = s.client.UploadBuffer(ctx, s.container, clean, data, opts)
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobAlreadyExists, bloberror.ConditionNotMet) {
			return "", ErrExists
		}
		return "", fmt.Errorf("failed to upload blob: %w", err)
	}

	return clean, nil
}
