// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package storage provides an S3-compatible object storage slot for the
// saved concepts collection. It wraps the AWS SDK v2 and is configured for
// path-style access (required by CEPH/Hetzner and MinIO).
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"graphicsstudio/internal/store"
)

// objectAPI is the subset of the S3 client used by S3KV.
type objectAPI interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3KV stores each key as one JSON object under bucket/prefix.
type S3KV struct {
	s3     objectAPI
	bucket string
	prefix string
}

// New creates an S3 slot with static credentials and path-style
// addressing. Endpoint, credentials and bucket are all required.
func New(endpoint, region, accessKey, secretKey, bucket, prefix string) (*S3KV, error) {
	if endpoint == "" || accessKey == "" || secretKey == "" || bucket == "" {
		return nil, errors.New("storage: endpoint, credentials and bucket are required")
	}
	if region == "" {
		region = "us-east-1"
	}

	client := s3.New(s3.Options{
		Region:       region,
		BaseEndpoint: aws.String(strings.TrimRight(endpoint, "/")),
		Credentials:  credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		UsePathStyle: true,
	})

	return newKV(client, bucket, prefix), nil
}

func newKV(api objectAPI, bucket, prefix string) *S3KV {
	prefix = strings.Trim(prefix, "/")
	if prefix != "" {
		prefix += "/"
	}
	return &S3KV{s3: api, bucket: bucket, prefix: prefix}
}

// ObjectKey returns the object key used for a slot key.
func (k *S3KV) ObjectKey(key string) string {
	return k.prefix + key + ".json"
}

// Get downloads the object for key. A missing object yields store.ErrNotFound.
func (k *S3KV) Get(ctx context.Context, key string) ([]byte, error) {
	objKey := k.ObjectKey(key)
	output, err := k.s3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(k.bucket),
		Key:    aws.String(objKey),
	})
	if err != nil {
		var noKey *s3types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("s3 download %s/%s: %w", k.bucket, objKey, err)
	}
	defer output.Body.Close()

	data, err := io.ReadAll(output.Body)
	if err != nil {
		return nil, fmt.Errorf("s3 read body %s/%s: %w", k.bucket, objKey, err)
	}
	return data, nil
}

// Set uploads value as the object for key, replacing any previous version.
func (k *S3KV) Set(ctx context.Context, key string, value []byte) error {
	objKey := k.ObjectKey(key)
	_, err := k.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(k.bucket),
		Key:           aws.String(objKey),
		Body:          bytes.NewReader(value),
		ContentLength: aws.Int64(int64(len(value))),
		ContentType:   aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("s3 upload %s/%s: %w", k.bucket, objKey, err)
	}
	return nil
}
