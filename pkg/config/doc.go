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

/*
Package config drives the resolution of an application's configuration.

The Orchestrator runs in two stages.  First the argument-stage sources (fixed
values and the command line) are loaded and validated on their own.  Invalid
values, or a request for help, stop processing before the file system is
touched.  Otherwise the properties file is searched for, using the search path
and file names from the first stage, and everything is resolved together:

	Start -> ArgsParsed -> Validated -> InvalidAbort
	                                 -> HelpAbort
	                                 -> FileSearch -> Resolved

Command line values always beat values from a properties file; fixed values
beat both.
*/
package config
