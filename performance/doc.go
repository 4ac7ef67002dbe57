// This file is part of Softrender.
//
// Softrender is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Softrender is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Softrender.  If not, see <https://www.gnu.org/licenses/>.

// Package performance contains helper functions relating to performance.
//
// Check() renders the demonstration scene offscreen for a fixed duration of
// time and reports the achieved frame rate. It will optionally generate
// profiling information and a graph of the compositor's internal structure.
//
// CalcFPS() calculates frames-per-second in aggregate. Probably not suitable
// for "live" FPS monitoring.
package performance
