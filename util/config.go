// Copyright 2016, RadiantBlue Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package util

import (
	"os"
	"strconv"
)

// Environment variables
const (
	DATABASE_URL        = "DATABASE_URL"
	CODADUMP            = "CODADUMP"
	S5P_ARCHIVE_TARGET  = "S5P_ARCHIVE_TARGET"
	S5P_DATAHUB_PROFILE = "S5P_DATAHUB_PROFILE"
	S3_ENDPOINT         = "S3_ENDPOINT"
	S3_ACCESS_KEY       = "S3_ACCESS_KEY"
	S3_SECRET_KEY       = "S3_SECRET_KEY"
	S3_USE_SSL          = "S3_USE_SSL"
)

const defaultCodadumpTool = "codadump"

// GetDatabaseURL returns a string for the DATABASE_URL environment variable
func GetDatabaseURL() string {
	databaseURL, ok := os.LookupEnv(DATABASE_URL)
	if !ok {
		LogAlert(&BasicLogContext{}, "Did not get a database URL from the environment. The local product index will not be available.")
	}
	return databaseURL
}

// GetCodadumpTool returns the coda dump executable name from the CODADUMP
// environment variable, or the conventional name when unset
func GetCodadumpTool() string {
	tool, ok := os.LookupEnv(CODADUMP)
	if !ok {
		return defaultCodadumpTool
	}
	return tool
}

// GetArchiveTarget returns a string for the S5P_ARCHIVE_TARGET environment
// variable: a local archive root directory, or an s3://bucket[/prefix] URL
func GetArchiveTarget() string {
	target, ok := os.LookupEnv(S5P_ARCHIVE_TARGET)
	if !ok {
		LogInfo(&BasicLogContext{}, "Did not get an archive target from the environment. Products will be indexed without archive placement.")
	}
	return target
}

// GetDataHubProfile returns a string for the S5P_DATAHUB_PROFILE environment
// variable, the path of the data hub pull profile
func GetDataHubProfile() string {
	profile, ok := os.LookupEnv(S5P_DATAHUB_PROFILE)
	if !ok {
		LogAlert(&BasicLogContext{}, "Did not get a data hub profile from the environment. Pulling products will not be available.")
	}
	return profile
}

// GetS3Endpoint returns a string for the S3_ENDPOINT environment variable
func GetS3Endpoint() string {
	endpoint, ok := os.LookupEnv(S3_ENDPOINT)
	if !ok {
		LogAlert(&BasicLogContext{}, "Did not get an S3 endpoint from the environment. S3 archive targets will not be available.")
	}
	return endpoint
}

// GetS3AccessKey returns a string for the S3_ACCESS_KEY environment variable
func GetS3AccessKey() string {
	accessKey, _ := os.LookupEnv(S3_ACCESS_KEY)
	return accessKey
}

// GetS3SecretKey returns a string for the S3_SECRET_KEY environment variable
func GetS3SecretKey() string {
	secretKey, _ := os.LookupEnv(S3_SECRET_KEY)
	return secretKey
}

// IsS3SSLEnabled returns true unless S3_USE_SSL is explicitly false
func IsS3SSLEnabled() bool {
	useSSL, err := strconv.ParseBool(os.Getenv(S3_USE_SSL))
	if err != nil {
		return true
	}
	return useSSL
}
