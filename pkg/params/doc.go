// Copyright (c) 2026 Tigera, Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package params describes the parameters an application recognises.
//
// A Schema is built once from groups of ParamPoints.  Each point has a
// category (ParamType), which is Application for everything the embedding
// code declares and one of the control categories for the parameters that
// steer resolution itself (help, verbose output and the properties file
// search).  Each point also has a Kind, which controls how raw string values
// are coerced:
//
//	KindString    passed through
//	KindFlag      true/1/yes/y/t/on or false/0/no/n/f/off
//	KindList      multi-valued; values from every source accumulate
//	KindInt       integer
//	KindDuration  bare numbers are seconds, otherwise Go duration syntax
//	KindOneOf     one of a fixed set of options, matched ignoring case
//
// Loaders turn sources into RawValues tagged with their Source; values from
// higher-numbered sources override those from lower-numbered ones:
//
//	Default       declared default
//	PropertyFile  properties file found on the search path
//	CommandLine   command-line arguments
//	Fixed         values injected by the embedding code
package params
